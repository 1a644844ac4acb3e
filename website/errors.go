package website

import (
	"net/http"

	"github.com/KOMKZ/go-pubsite-service/errcode"
)

var (
	// ErrWebsiteNotFound no website with the requested id
	ErrWebsiteNotFound = errcode.New(
		errcode.ModuleWebsite, 1,
		"website", "error.website.not_found", "website not found",
		http.StatusNotFound,
	)

	// ErrWebsitePublisherNotFound the referenced owner does not exist
	ErrWebsitePublisherNotFound = errcode.New(
		errcode.ModuleWebsite, 2,
		"website", "error.website.publisher_not_found", "publisher not found",
		http.StatusNotFound,
	)

	// ErrWebsiteStore relational store failure
	ErrWebsiteStore = errcode.New(
		errcode.ModuleWebsite, 3,
		"website", "error.website.store", "website store operation failed",
		http.StatusInternalServerError,
	)
)
