package domain

type (
	FileId   = string
	PostId   = string
	UserId   = string
	ClientId = string

	FileIds = []FileId
)
