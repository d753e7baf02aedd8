package presentation

const (
	IDParam       = "id"
	FilenameParam = "filename"
	UserIDQuery   = "user_id"
	LimitQuery    = "limit"
)
