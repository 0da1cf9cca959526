package store

import "errors"

// ErrPathEmpty reports a store created without a cache path.
var ErrPathEmpty = errors.New("cache path is empty")

// ErrLoad reports a failure reading the cache table.
var ErrLoad = errors.New("load cache")

// ErrSave reports a failure rewriting the cache table.
var ErrSave = errors.New("save cache")
