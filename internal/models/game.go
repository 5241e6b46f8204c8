package models

// GameRow is the stored form of one catalog entry. List fields hold the
// delimiter-joined encoding from schema.EncodeList. Column names must match
// schema.Columns.
type GameRow struct {
	AppID              int64   `gorm:"column:app_id;primaryKey;autoIncrement:false"`
	Name               string  `gorm:"column:name;not null"`
	ReleaseDate        string  `gorm:"column:release_date;not null"`
	RequiredAge        int64   `gorm:"column:required_age;not null"`
	Price              float64 `gorm:"column:price;not null"`
	DLCCount           int64   `gorm:"column:dlc_count;not null"`
	AboutTheGame       string  `gorm:"column:about_the_game;not null"`
	SupportedLanguages string  `gorm:"column:supported_languages;not null"`
	Windows            int64   `gorm:"column:windows;not null;check:windows IN (0,1)"`
	Mac                int64   `gorm:"column:mac;not null;check:mac IN (0,1)"`
	Linux              int64   `gorm:"column:linux;not null;check:linux IN (0,1)"`
	Positive           int64   `gorm:"column:positive;not null"`
	Negative           int64   `gorm:"column:negative;not null"`
	ScoreRank          *int64  `gorm:"column:score_rank"`
	Developers         string  `gorm:"column:developers;not null"`
	Publishers         string  `gorm:"column:publishers;not null"`
	Categories         string  `gorm:"column:categories;not null"`
	Genres             string  `gorm:"column:genres;not null"`
	Tags               string  `gorm:"column:tags;not null"`
}

// TableName pins the table name used by the catalog store.
func (GameRow) TableName() string { return "game_data" }

// CatalogEntry is one search result. JSON keys use the dataset's canonical
// column names.
type CatalogEntry struct {
	AppID              int64    `json:"AppID" example:"620"`
	Name               string   `json:"Name" example:"Portal 2"`
	ReleaseDate        string   `json:"Release_date" example:"Apr 18, 2011"`
	RequiredAge        int64    `json:"Required_age"`
	Price              float64  `json:"Price" example:"9.99"`
	DLCCount           int64    `json:"DLC_count"`
	AboutTheGame       string   `json:"About_the_game"`
	SupportedLanguages []string `json:"Supported_languages"`
	Windows            int64    `json:"Windows" example:"1"`
	Mac                int64    `json:"Mac" example:"1"`
	Linux              int64    `json:"Linux" example:"1"`
	Positive           int64    `json:"Positive"`
	Negative           int64    `json:"Negative"`
	ScoreRank          *int64   `json:"Score_rank"`
	Developers         string   `json:"Developers" example:"Valve"`
	Publishers         string   `json:"Publishers" example:"Valve"`
	Categories         []string `json:"Categories"`
	Genres             []string `json:"Genres"`
	Tags               []string `json:"Tags"`
}
