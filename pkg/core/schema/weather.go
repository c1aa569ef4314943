package schema

const iconDescription = "One of exactly: sunny, partly_cloudy, cloudy, rainy, stormy, snowy, foggy"

// weatherTree is built once; Weather() hands out the shared pointer.
var weatherTree = obj(map[string]*Node{
	"current": obj(map[string]*Node{
		"temperature": num(),
		"condition":   str(),
		"icon":        enumStr(iconDescription),
	}, "temperature", "condition", "icon"),
	"daily": arr(obj(map[string]*Node{
		"day":       str(),
		"high_temp": num(),
		"low_temp":  num(),
		"condition": str(),
		"icon":      enumStr(iconDescription),
	}, "day", "high_temp", "low_temp", "condition", "icon")),
}, "current", "daily")

// Weather returns the weather forecast schema tree. The returned tree is
// shared and must not be mutated.
func Weather() *Node {
	return weatherTree
}
