package rephrase

import "github.com/textloom/rephrase-api/internal/common"

// Public ids are random ULIDs so they cannot be enumerated.
func NewSessionID() (string, error) { return common.NewULID() }

func NewVariantID() (string, error) { return common.NewULID() }
