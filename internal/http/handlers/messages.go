package handlers

import "promptstudio/internal/middleware"

const (
	codeBadRequest        = "bad_request"
	codeInvalidImage      = "invalid_image"
	codeMissingToken      = "missing_token"
	codeNotFound          = "not_found"
	codePayloadTooLarge   = "payload_too_large"
	codeRateLimited       = "rate_limited"
	codeMalformedResponse = "malformed_response"
	codeEmptyResponse     = "empty_response"
	codeUpstream          = "upstream_failed"
	codeInternal          = "internal"
)

var messages = map[string]map[string]string{
	middleware.LocaleEnglish: {
		codeBadRequest:        "The request is missing a field or has an invalid value.",
		codeInvalidImage:      "Only JPEG and PNG images are supported.",
		codeMissingToken:      "Please provide a valid Bearer token.",
		codeNotFound:          "The requested resource was not found.",
		codePayloadTooLarge:   "The upload is too large.",
		codeRateLimited:       "Too many requests. Please wait a moment and try again.",
		codeMalformedResponse: "The AI returned a response that could not be read. Please try again.",
		codeEmptyResponse:     "The AI returned an empty response. Please try again.",
		codeUpstream:          "The AI service could not complete the request.",
		codeInternal:          "An unexpected error occurred.",
	},
	middleware.LocaleMalay: {
		codeBadRequest:        "Permintaan tidak lengkap atau mengandungi nilai yang tidak sah.",
		codeInvalidImage:      "Hanya imej JPEG dan PNG disokong.",
		codeMissingToken:      "Sila berikan token Bearer yang sah.",
		codeNotFound:          "Sumber yang diminta tidak dijumpai.",
		codePayloadTooLarge:   "Muat naik terlalu besar.",
		codeRateLimited:       "Terlalu banyak permintaan. Sila tunggu sebentar dan cuba lagi.",
		codeMalformedResponse: "AI memberikan jawapan yang tidak dapat dibaca. Sila cuba lagi.",
		codeEmptyResponse:     "AI tidak memberikan sebarang jawapan. Sila cuba lagi.",
		codeUpstream:          "Perkhidmatan AI tidak dapat menyiapkan permintaan.",
		codeInternal:          "Ralat yang tidak dijangka telah berlaku.",
	},
}

// message returns the localized text for code, falling back to English.
func message(locale, code string) string {
	if m, ok := messages[locale][code]; ok {
		return m
	}
	return messages[middleware.LocaleEnglish][code]
}
