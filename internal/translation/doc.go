// Package translation provides the client for the Google Cloud Translation
// v2 REST endpoint. Each call translates one record and is preceded by a
// pacing wait so that requests stay under the provider's rate limits.
package translation
