package model

type EditMode string

const (
	EditModeCreate EditMode = "create"
	EditModeUpdate EditMode = "update"
)

// EditTarget is the form currently open in the presentation. Post is nil for a new entry.
type EditTarget struct {
	Mode EditMode `json:"mode"`
	Post *Post    `json:"post,omitempty"`
}

type AppState struct {
	Posts        []Post      `json:"posts"`
	Loading      bool        `json:"loading"`
	Error        string      `json:"error,omitempty"`
	Editing      *EditTarget `json:"editing,omitempty"`
	Theme        string      `json:"theme,omitempty"`
	ThemeCycling bool        `json:"themeCycling"`
	InFlight     []int64     `json:"inFlight"`
}
