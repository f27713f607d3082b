// Package acul adapts the upstream Universal Login collaborator. It decodes
// the context document the authorization server renders for the active state
// token into read-only Transaction and Screen snapshots, and submits
// normalized payloads back to the server's screen endpoints as standard
// form POSTs.
//
// Submissions are fire-and-forget: a nil return means the request was handed
// off. The outcome of an attempt (bad credentials, captcha mismatch) comes
// back inside the next context document's transaction error list, never as a
// return value here.
package acul
