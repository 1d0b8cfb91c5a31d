package model

import "time"

// Metal identifies a tracked precious metal.
type Metal string

const (
	Gold   Metal = "gold"
	Silver Metal = "silver"
)

// PriceQuote is a single spot price for one metal.
type PriceQuote struct {
	Metal       Metal
	USDPerOunce float64 // ex: 3657.30
}

// ExchangeRate is a conversion rate from USD into the local currency.
type ExchangeRate struct {
	Base  string // always USD
	Quote string // ex: EGP
	Rate  float64
}

// PriceRecord holds the eight derived price variants of one tracker run.
// It is built once per run and only ever written to the journal.
type PriceRecord struct {
	Timestamp        time.Time
	GoldUSDOunce     float64
	SilverUSDOunce   float64
	GoldLocalOunce   float64
	SilverLocalOunce float64
	GoldUSDGram      float64
	SilverUSDGram    float64
	GoldLocalGram    float64
	SilverLocalGram  float64
}
