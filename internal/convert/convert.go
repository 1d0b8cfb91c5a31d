package convert

// OunceToGram is the mass of a troy ounce in grams.
const OunceToGram = 31.1034768

// GramPrice converts a USD-per-troy-ounce price to USD per gram.
func GramPrice(usdPerOunce float64) float64 {
	return usdPerOunce / OunceToGram
}

// ToLocal converts a USD amount into the local currency at the given rate.
func ToLocal(usd, rate float64) float64 {
	return usd * rate
}
