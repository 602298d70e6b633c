package domain

import "github.com/lib/pq"

type (
	Username   = string
	Token      = string
	FamilyName = string
	TopicId    = string
	PostId     = string
	Emails     = pq.StringArray
)
