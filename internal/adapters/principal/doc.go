// Package principal implements ports.PrincipalResolver. Each resolver turns
// an inbound request into the authenticated user.Principal or reports
// ports.ErrUnauthenticated; none of them know about boards or roles.
//
// Three modes are available, selected by auth.mode:
//   - header:  a trusted proxy sets the subject in a request header.
//   - jwt:     an HS256 bearer token carries the subject in "sub".
//   - session: a session cookie is introspected by a remote service.
package principal
