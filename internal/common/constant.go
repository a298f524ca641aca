package common

// AccessTokenHeaderName is the HTTP header carrying the raw access token.
const AccessTokenHeaderName = "Authorization"

// BearerPrefix is tolerated in front of the token but never required.
const BearerPrefix = "Bearer "
