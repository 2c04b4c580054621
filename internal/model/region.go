package model

import "strings"

// Region is a platform routing value such as "euw1" or "na1"
type Region string

// Platform pairs a display name with its routing value
type Platform struct {
	Name   string
	Region Region
}

// Platforms lists the regional platforms a player can be looked up on,
// in the order they are offered to clients.
var Platforms = []Platform{
	{Name: "EUW", Region: "euw1"},
	{Name: "EUNE", Region: "eun1"},
	{Name: "NA", Region: "na1"},
	{Name: "BR", Region: "br1"},
	{Name: "LAN", Region: "la1"},
	{Name: "LAS", Region: "la2"},
	{Name: "OCE", Region: "oc1"},
	{Name: "RU", Region: "ru1"},
	{Name: "TR", Region: "tr1"},
	{Name: "JP", Region: "jp1"},
	{Name: "KR", Region: "kr"},
	{Name: "PH", Region: "ph2"},
	{Name: "SG", Region: "sg2"},
	{Name: "TW", Region: "tw2"},
	{Name: "TH", Region: "th2"},
	{Name: "VN", Region: "vn2"},
}

// ParseRegion normalises a region code and checks it against the known platforms.
// Matching is case-insensitive; "NA1" and "na1" are the same platform.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToLower(strings.TrimSpace(s)))
	for _, p := range Platforms {
		if p.Region == r {
			return r, nil
		}
	}
	return "", ErrUnknownRegion
}
