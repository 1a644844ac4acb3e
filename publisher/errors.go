package publisher

import (
	"net/http"

	"github.com/KOMKZ/go-pubsite-service/errcode"
)

var (
	// ErrPublisherNotFound no publisher with the requested id
	ErrPublisherNotFound = errcode.New(
		errcode.ModulePublisher, 1,
		"publisher", "error.publisher.not_found", "publisher not found",
		http.StatusNotFound,
	)

	// ErrPublisherDuplicateName publisher name already taken
	ErrPublisherDuplicateName = errcode.New(
		errcode.ModulePublisher, 2,
		"publisher", "error.publisher.duplicate_name", "publisher name already exists",
		http.StatusBadRequest,
	)

	// ErrPublisherStore relational store failure
	ErrPublisherStore = errcode.New(
		errcode.ModulePublisher, 3,
		"publisher", "error.publisher.store", "publisher store operation failed",
		http.StatusInternalServerError,
	)
)
