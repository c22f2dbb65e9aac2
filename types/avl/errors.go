package avl

import "errors"

var (
	ErrNodeDuplicate = errors.New("tree node is duplicated")
	ErrNodeNotFound  = errors.New("tree node is not found")
)
