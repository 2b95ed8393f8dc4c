package common

// AuthorizationHeaderName is the HTTP header carrying the bearer credential
// on protected requests.
const AuthorizationHeaderName = "Authorization"
