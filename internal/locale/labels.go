package locale

// Label tables map platform status and type codes to the Arabic text
// shown to users. Unknown codes fall back to the raw code so a new
// platform value degrades to something visible instead of a blank.

var auctionStatusLabels = map[string]string{
	"live":      "مباشر",
	"scheduled": "قادم",
	"ended":     "منتهي",
	"completed": "مكتمل",
	"cancelled": "ملغي",
}

var auctionTypeLabels = map[string]string{
	"public":  "مزاد عام",
	"private": "مزاد خاص",
	"charity": "مزاد خيري",
}

var propertyStatusLabels = map[string]string{
	"active":    "متاح",
	"pending":   "قيد المراجعة",
	"sold":      "مباع",
	"withdrawn": "مسحوب",
}

var propertyTypeLabels = map[string]string{
	"apartment": "شقة",
	"villa":     "فيلا",
	"land":      "أرض",
	"building":  "عمارة",
	"office":    "مكتب",
	"shop":      "محل تجاري",
}

var roleLabels = map[string]string{
	"buyer":  "مشتري",
	"seller": "بائع",
	"agent":  "وسيط عقاري",
	"admin":  "مشرف",
}

// Style tags pick the badge palette next to each label. Pages map
// them to CSS classes; unknown codes render with the default badge.

var auctionStatusStyles = map[string]string{
	"live":      "success",
	"scheduled": "info",
	"ended":     "muted",
	"completed": "muted",
	"cancelled": "danger",
}

var auctionTypeStyles = map[string]string{
	"public":  "default",
	"private": "warning",
	"charity": "success",
}

var propertyStatusStyles = map[string]string{
	"active":    "success",
	"pending":   "warning",
	"sold":      "info",
	"withdrawn": "muted",
}

const defaultStyle = "default"

func lookup(table map[string]string, code string) string {
	if label, ok := table[code]; ok {
		return label
	}
	return code
}

func styleOf(table map[string]string, code string) string {
	if style, ok := table[code]; ok {
		return style
	}
	return defaultStyle
}

func AuctionStatusLabel(code string) string  { return lookup(auctionStatusLabels, code) }
func AuctionTypeLabel(code string) string    { return lookup(auctionTypeLabels, code) }
func PropertyStatusLabel(code string) string { return lookup(propertyStatusLabels, code) }
func PropertyTypeLabel(code string) string   { return lookup(propertyTypeLabels, code) }
func RoleLabel(code string) string           { return lookup(roleLabels, code) }

func AuctionStatusStyle(code string) string  { return styleOf(auctionStatusStyles, code) }
func AuctionTypeStyle(code string) string    { return styleOf(auctionTypeStyles, code) }
func PropertyStatusStyle(code string) string { return styleOf(propertyStatusStyles, code) }
