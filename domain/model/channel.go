package model

// ChannelStat is one row of the director channel dashboard
type ChannelStat struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	Role       string `json:"role"` // Director, Creator, Content
	TotalViews int64  `json:"totalViews"`
	VideoCount int    `json:"videoCount"`
}

// ChannelMatch is a search hit on a channel name
type ChannelMatch struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ChannelPage groups everything published under one channel name
type ChannelPage struct {
	Name   string  `json:"name"`
	Videos []Video `json:"videos"`
	Shorts []Video `json:"shorts"`
	Posts  []Post  `json:"posts"`
}
