package offer

// The shopping provider is not schema-stable: the same logical field shows up
// under different names depending on engine and result block. Each output
// field is resolved through an ordered list of accessors, first hit wins, so
// the precedence is auditable field by field.

type accessor func(map[string]any) any

// field reads a top-level key.
func field(name string) accessor {
	return func(m map[string]any) any { return m[name] }
}

// listHead reads the first element of a list-valued key.
func listHead(name string) accessor {
	return func(m map[string]any) any {
		if l, ok := m[name].([]any); ok && len(l) > 0 {
			return l[0]
		}
		return nil
	}
}

// listHeadField reads a key of the first (map-valued) element of a list.
func listHeadField(name, sub string) accessor {
	return func(m map[string]any) any {
		if l, ok := m[name].([]any); ok && len(l) > 0 {
			if e, ok := l[0].(map[string]any); ok {
				return e[sub]
			}
		}
		return nil
	}
}

var (
	titleAccessors = []accessor{field("title"), field("product_title"), field("name")}
	imageAccessors = []accessor{field("thumbnail"), field("serpapi_thumbnail"), field("image"), listHead("thumbnails")}
	linkAccessors  = []accessor{field("link"), field("product_link"), field("source"), field("serpapi_link")}
	priceAccessors = []accessor{
		field("extracted_price"),
		field("price"),
		listHeadField("offers", "price"),
		listHeadField("offers", "extracted_price"),
	}
	merchantAccessors = []accessor{field("merchant"), field("source"), field("store")}
)

// firstValue returns the first non-nil, non-empty-string value.
func firstValue(m map[string]any, accs []accessor) any {
	for _, acc := range accs {
		v := acc(m)
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		return v
	}
	return nil
}

// firstString returns the first non-empty string value.
func firstString(m map[string]any, accs []accessor) *string {
	for _, acc := range accs {
		if s, ok := acc(m).(string); ok && s != "" {
			return &s
		}
	}
	return nil
}

// Normalize maps a raw provider record into an Offer. Best effort, never
// fails: absent fields come out as null. The original record is kept in Raw
// for debugging.
func Normalize(raw map[string]any) Offer {
	o := Offer{Raw: raw}

	if t := firstString(raw, titleAccessors); t != nil {
		o.Title = *t
	}
	o.Image = firstString(raw, imageAccessors)
	o.Link = firstString(raw, linkAccessors)
	o.Merchant = firstString(raw, merchantAccessors)

	priceVal := firstValue(raw, priceAccessors)
	o.Price = ParsePrice(priceVal)

	if c, ok := raw["currency"].(string); ok && c != "" {
		o.Currency = &c
	} else {
		o.Currency = currencyOf(priceVal)
	}

	return o
}
