package colour

// namedColours is the CSS named colour table. It is never modified.
var namedColours = []NamedColour{
	{Name: "aliceblue", Hex: "#f0f8ff", Category: "blue"},
	{Name: "antiquewhite", Hex: "#faebd7", Category: "white"},
	{Name: "aqua", Hex: "#00ffff", Category: "cyan"},
	{Name: "aquamarine", Hex: "#7fffd4", Category: "cyan"},
	{Name: "azure", Hex: "#f0ffff", Category: "cyan"},
	{Name: "beige", Hex: "#f5f5dc", Category: "brown"},
	{Name: "bisque", Hex: "#ffe4c4", Category: "orange"},
	{Name: "black", Hex: "#000000", Category: "black"},
	{Name: "blanchedalmond", Hex: "#ffebcd", Category: "orange"},
	{Name: "blue", Hex: "#0000ff", Category: "blue"},
	{Name: "blueviolet", Hex: "#8a2be2", Category: "purple"},
	{Name: "brown", Hex: "#a52a2a", Category: "brown"},
	{Name: "burlywood", Hex: "#deb887", Category: "brown"},
	{Name: "cadetblue", Hex: "#5f9ea0", Category: "blue"},
	{Name: "chartreuse", Hex: "#7fff00", Category: "green"},
	{Name: "chocolate", Hex: "#d2691e", Category: "brown"},
	{Name: "coral", Hex: "#ff7f50", Category: "red"},
	{Name: "cornflowerblue", Hex: "#6495ed", Category: "blue"},
	{Name: "cornsilk", Hex: "#fff8dc", Category: "yellow"},
	{Name: "crimson", Hex: "#dc143c", Category: "red"},
	{Name: "cyan", Hex: "#00ffff", Category: "cyan"},
	{Name: "darkblue", Hex: "#00008b", Category: "blue"},
	{Name: "darkcyan", Hex: "#008b8b", Category: "cyan"},
	{Name: "darkgoldenrod", Hex: "#b8860b", Category: "yellow"},
	{Name: "darkgray", Hex: "#a9a9a9", Category: "gray"},
	{Name: "darkgreen", Hex: "#006400", Category: "green"},
	{Name: "darkkhaki", Hex: "#bdb76b", Category: "yellow"},
	{Name: "darkmagenta", Hex: "#8b008b", Category: "purple"},
	{Name: "darkolivegreen", Hex: "#556b2f", Category: "green"},
	{Name: "darkorange", Hex: "#ff8c00", Category: "orange"},
	{Name: "darkorchid", Hex: "#9932cc", Category: "purple"},
	{Name: "darkred", Hex: "#8b0000", Category: "red"},
	{Name: "darksalmon", Hex: "#e9967a", Category: "red"},
	{Name: "darkseagreen", Hex: "#8fbc8f", Category: "green"},
	{Name: "darkslateblue", Hex: "#483d8b", Category: "blue"},
	{Name: "darkslategray", Hex: "#2f4f4f", Category: "gray"},
	{Name: "darkturquoise", Hex: "#00ced1", Category: "cyan"},
	{Name: "darkviolet", Hex: "#9400d3", Category: "purple"},
	{Name: "deeppink", Hex: "#ff1493", Category: "pink"},
	{Name: "deepskyblue", Hex: "#00bfff", Category: "blue"},
	{Name: "dimgray", Hex: "#696969", Category: "gray"},
	{Name: "dodgerblue", Hex: "#1e90ff", Category: "blue"},
	{Name: "firebrick", Hex: "#b22222", Category: "red"},
	{Name: "floralwhite", Hex: "#fffaf0", Category: "white"},
	{Name: "forestgreen", Hex: "#228b22", Category: "green"},
	{Name: "fuchsia", Hex: "#ff00ff", Category: "pink"},
	{Name: "gainsboro", Hex: "#dcdcdc", Category: "gray"},
	{Name: "ghostwhite", Hex: "#f8f8ff", Category: "white"},
	{Name: "gold", Hex: "#ffd700", Category: "yellow"},
	{Name: "goldenrod", Hex: "#daa520", Category: "yellow"},
	{Name: "gray", Hex: "#808080", Category: "gray"},
	{Name: "green", Hex: "#008000", Category: "green"},
	{Name: "greenyellow", Hex: "#adff2f", Category: "green"},
	{Name: "honeydew", Hex: "#f0fff0", Category: "green"},
	{Name: "hotpink", Hex: "#ff69b4", Category: "pink"},
	{Name: "indianred", Hex: "#cd5c5c", Category: "red"},
	{Name: "indigo", Hex: "#4b0082", Category: "purple"},
	{Name: "ivory", Hex: "#fffff0", Category: "white"},
	{Name: "khaki", Hex: "#f0e68c", Category: "yellow"},
	{Name: "lavender", Hex: "#e6e6fa", Category: "purple"},
	{Name: "lavenderblush", Hex: "#fff0f5", Category: "pink"},
	{Name: "lawngreen", Hex: "#7cfc00", Category: "green"},
	{Name: "lemonchiffon", Hex: "#fffacd", Category: "yellow"},
	{Name: "lightblue", Hex: "#add8e6", Category: "blue"},
	{Name: "lightcoral", Hex: "#f08080", Category: "red"},
	{Name: "lightcyan", Hex: "#e0ffff", Category: "cyan"},
	{Name: "lightgoldenrodyellow", Hex: "#fafad2", Category: "yellow"},
	{Name: "lightgray", Hex: "#d3d3d3", Category: "gray"},
	{Name: "lightgreen", Hex: "#90ee90", Category: "green"},
	{Name: "lightpink", Hex: "#ffb6c1", Category: "pink"},
	{Name: "lightsalmon", Hex: "#ffa07a", Category: "red"},
	{Name: "lightseagreen", Hex: "#20b2aa", Category: "green"},
	{Name: "lightskyblue", Hex: "#87cefa", Category: "blue"},
	{Name: "lightslategray", Hex: "#778899", Category: "gray"},
	{Name: "lightsteelblue", Hex: "#b0c4de", Category: "blue"},
	{Name: "lightyellow", Hex: "#ffffe0", Category: "yellow"},
	{Name: "lime", Hex: "#00ff00", Category: "green"},
	{Name: "limegreen", Hex: "#32cd32", Category: "green"},
	{Name: "linen", Hex: "#faf0e6", Category: "brown"},
	{Name: "magenta", Hex: "#ff00ff", Category: "pink"},
	{Name: "maroon", Hex: "#800000", Category: "red"},
	{Name: "mediumaquamarine", Hex: "#66cdaa", Category: "cyan"},
	{Name: "mediumblue", Hex: "#0000cd", Category: "blue"},
	{Name: "mediumorchid", Hex: "#ba55d3", Category: "purple"},
	{Name: "mediumpurple", Hex: "#9370db", Category: "purple"},
	{Name: "mediumseagreen", Hex: "#3cb371", Category: "green"},
	{Name: "mediumslateblue", Hex: "#7b68ee", Category: "blue"},
	{Name: "mediumspringgreen", Hex: "#00fa9a", Category: "green"},
	{Name: "mediumturquoise", Hex: "#48d1cc", Category: "cyan"},
	{Name: "mediumvioletred", Hex: "#c71585", Category: "pink"},
	{Name: "midnightblue", Hex: "#191970", Category: "blue"},
	{Name: "mintcream", Hex: "#f5fffa", Category: "green"},
	{Name: "mistyrose", Hex: "#ffe4e1", Category: "pink"},
	{Name: "moccasin", Hex: "#ffe4b5", Category: "orange"},
	{Name: "navajowhite", Hex: "#ffdead", Category: "orange"},
	{Name: "navy", Hex: "#000080", Category: "blue"},
	{Name: "oldlace", Hex: "#fdf5e6", Category: "white"},
	{Name: "olive", Hex: "#808000", Category: "green"},
	{Name: "olivedrab", Hex: "#6b8e23", Category: "green"},
	{Name: "orange", Hex: "#ffa500", Category: "orange"},
	{Name: "orangered", Hex: "#ff4500", Category: "red"},
	{Name: "orchid", Hex: "#da70d6", Category: "purple"},
	{Name: "palegoldenrod", Hex: "#eee8aa", Category: "yellow"},
	{Name: "palegreen", Hex: "#98fb98", Category: "green"},
	{Name: "paleturquoise", Hex: "#afeeee", Category: "cyan"},
	{Name: "palevioletred", Hex: "#db7093", Category: "pink"},
	{Name: "papayawhip", Hex: "#ffefd5", Category: "orange"},
	{Name: "peachpuff", Hex: "#ffdab9", Category: "orange"},
	{Name: "peru", Hex: "#cd853f", Category: "brown"},
	{Name: "pink", Hex: "#ffc0cb", Category: "pink"},
	{Name: "plum", Hex: "#dda0dd", Category: "purple"},
	{Name: "powderblue", Hex: "#b0e0e6", Category: "blue"},
	{Name: "purple", Hex: "#800080", Category: "purple"},
	{Name: "rebeccapurple", Hex: "#663399", Category: "purple"},
	{Name: "red", Hex: "#ff0000", Category: "red"},
	{Name: "rosybrown", Hex: "#bc8f8f", Category: "brown"},
	{Name: "royalblue", Hex: "#4169e1", Category: "blue"},
	{Name: "saddlebrown", Hex: "#8b4513", Category: "brown"},
	{Name: "salmon", Hex: "#fa8072", Category: "red"},
	{Name: "sandybrown", Hex: "#f4a460", Category: "orange"},
	{Name: "seagreen", Hex: "#2e8b57", Category: "green"},
	{Name: "seashell", Hex: "#fff5ee", Category: "pink"},
	{Name: "sienna", Hex: "#a0522d", Category: "brown"},
	{Name: "silver", Hex: "#c0c0c0", Category: "gray"},
	{Name: "skyblue", Hex: "#87ceeb", Category: "blue"},
	{Name: "slateblue", Hex: "#6a5acd", Category: "blue"},
	{Name: "slategray", Hex: "#708090", Category: "gray"},
	{Name: "snow", Hex: "#fffafa", Category: "white"},
	{Name: "springgreen", Hex: "#00ff7f", Category: "green"},
	{Name: "steelblue", Hex: "#4682b4", Category: "blue"},
	{Name: "tan", Hex: "#d2b48c", Category: "brown"},
	{Name: "teal", Hex: "#008080", Category: "cyan"},
	{Name: "thistle", Hex: "#d8bfd8", Category: "purple"},
	{Name: "tomato", Hex: "#ff6347", Category: "red"},
	{Name: "turquoise", Hex: "#40e0d0", Category: "cyan"},
	{Name: "violet", Hex: "#ee82ee", Category: "purple"},
	{Name: "wheat", Hex: "#f5deb3", Category: "brown"},
	{Name: "white", Hex: "#ffffff", Category: "white"},
	{Name: "whitesmoke", Hex: "#f5f5f5", Category: "white"},
	{Name: "yellow", Hex: "#ffff00", Category: "yellow"},
	{Name: "yellowgreen", Hex: "#9acd32", Category: "green"},
}
