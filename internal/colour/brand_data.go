package colour

// brandColours is the brand colour reference table. It is never modified.
var brandColours = []BrandColours{
	{Brand: "Facebook", Colors: []string{"#1877f2", "#4267b2"}, Category: "Social Media"},
	{Brand: "Twitter", Colors: []string{"#1da1f2"}, Category: "Social Media"},
	{Brand: "Instagram", Colors: []string{"#e4405f", "#f77737", "#fcaf45"}, Category: "Social Media"},
	{Brand: "LinkedIn", Colors: []string{"#0a66c2", "#313335"}, Category: "Social Media"},
	{Brand: "YouTube", Colors: []string{"#ff0000", "#282828"}, Category: "Social Media"},
	{Brand: "TikTok", Colors: []string{"#000000", "#fe2c55", "#25f4ee"}, Category: "Social Media"},
	{Brand: "Pinterest", Colors: []string{"#e60023"}, Category: "Social Media"},
	{Brand: "Snapchat", Colors: []string{"#fffc00"}, Category: "Social Media"},
	{Brand: "Reddit", Colors: []string{"#ff4500", "#ff5700"}, Category: "Social Media"},
	{Brand: "WhatsApp", Colors: []string{"#25d366", "#128c7e"}, Category: "Social Media"},
	{Brand: "Discord", Colors: []string{"#5865f2", "#7289da"}, Category: "Social Media"},
	{Brand: "Telegram", Colors: []string{"#0088cc", "#26a5e4"}, Category: "Social Media"},
	{Brand: "Slack", Colors: []string{"#4a154b", "#36c5f0", "#2eb67d", "#ecb22e", "#e01e5a"}, Category: "Productivity"},
	{Brand: "Notion", Colors: []string{"#000000", "#ffffff"}, Category: "Productivity"},
	{Brand: "Asana", Colors: []string{"#f06a6a", "#fcb400", "#7f8a93"}, Category: "Productivity"},
	{Brand: "Trello", Colors: []string{"#0079bf", "#00c2e0"}, Category: "Productivity"},
	{Brand: "Monday.com", Colors: []string{"#ff3d57", "#ffcb00", "#00d647"}, Category: "Productivity"},
	{Brand: "Apple", Colors: []string{"#000000", "#555555", "#a6b1b7"}, Category: "Technology"},
	{Brand: "Google", Colors: []string{"#4285f4", "#ea4335", "#fbbc04", "#34a853"}, Category: "Technology"},
	{Brand: "Microsoft", Colors: []string{"#f25022", "#7fba00", "#00a4ef", "#ffb900"}, Category: "Technology"},
	{Brand: "Amazon", Colors: []string{"#ff9900", "#146eb4"}, Category: "E-commerce"},
	{Brand: "Spotify", Colors: []string{"#1db954", "#191414"}, Category: "Entertainment"},
	{Brand: "Netflix", Colors: []string{"#e50914", "#000000"}, Category: "Entertainment"},
	{Brand: "Twitch", Colors: []string{"#9146ff", "#772ce8"}, Category: "Entertainment"},
	{Brand: "GitHub", Colors: []string{"#181717", "#ffffff"}, Category: "Developer Tools"},
	{Brand: "GitLab", Colors: []string{"#fc6d26", "#e24329"}, Category: "Developer Tools"},
	{Brand: "Visual Studio Code", Colors: []string{"#007acc", "#23a9f2"}, Category: "Developer Tools"},
	{Brand: "Figma", Colors: []string{"#f24e1e", "#ff7262", "#a259ff", "#1abcfe", "#0acf83"}, Category: "Design Tools"},
	{Brand: "Adobe", Colors: []string{"#ff0000", "#ed1c24"}, Category: "Design Tools"},
	{Brand: "Canva", Colors: []string{"#00c4cc", "#7d2ae7"}, Category: "Design Tools"},
	{Brand: "Dropbox", Colors: []string{"#0061ff"}, Category: "Cloud Storage"},
	{Brand: "Airbnb", Colors: []string{"#ff5a5f", "#00a699"}, Category: "Travel"},
	{Brand: "Uber", Colors: []string{"#000000", "#ffffff"}, Category: "Transportation"},
	{Brand: "Lyft", Colors: []string{"#ff00bf", "#352384"}, Category: "Transportation"},
	{Brand: "Shopify", Colors: []string{"#96bf48", "#5e8e3e"}, Category: "E-commerce"},
	{Brand: "Stripe", Colors: []string{"#635bff", "#0a2540"}, Category: "FinTech"},
	{Brand: "PayPal", Colors: []string{"#00457c", "#0070ba", "#009cde"}, Category: "FinTech"},
	{Brand: "Coca-Cola", Colors: []string{"#f40009", "#ffffff"}, Category: "Food & Beverage"},
	{Brand: "Pepsi", Colors: []string{"#004b93", "#e32934"}, Category: "Food & Beverage"},
	{Brand: "Starbucks", Colors: []string{"#00704a", "#ffffff"}, Category: "Food & Beverage"},
	{Brand: "McDonald's", Colors: []string{"#ffc72c", "#da291c"}, Category: "Food & Beverage"},
	{Brand: "Nike", Colors: []string{"#000000", "#ffffff"}, Category: "Sports & Fashion"},
	{Brand: "Adidas", Colors: []string{"#000000", "#ffffff"}, Category: "Sports & Fashion"},
	{Brand: "BMW", Colors: []string{"#1c69d4", "#ffffff"}, Category: "Automotive"},
	{Brand: "Tesla", Colors: []string{"#e82127", "#000000"}, Category: "Automotive"},
}
