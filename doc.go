// Package ulpforms implements the form handling core for a set of custom
// Auth0 Universal Login screens (Login, Login-ID, Signup): field validation,
// payload normalization, and screen submission flows.
//
// Validation:
//   - Field rules are pure reads over the form values. Cross-field rules
//     (confirm email/password, the date-of-birth composite) always read the
//     live counterpart value, never a snapshot. Invalid input is reported as
//     per-field message maps and blocks submission; it is never surfaced as a
//     Go error to the caller.
//   - FormSession tracks value changes and re-runs dependent validators via
//     an explicit dependency table, pushing messages through a FieldBinder so
//     the core never depends on a concrete UI layer.
//
// Submission:
//   - SignupPayload and LoginOptions map validated form values onto the exact
//     key set the authorization server expects: username/password/captcha
//     unprefixed, every profile field renamed with the ulp- prefix and
//     dot-paths flattened (dob.month becomes ulp-dob-month). The captcha key
//     is omitted entirely when the screen reports no captcha capability or
//     the value is blank.
//   - Screen managers wrap the upstream submitters fire-and-forget: submit
//     errors surface through the transaction error list on the next render,
//     not through these calls. The login-id manager additionally runs the
//     connection probe and redirects through a Navigator when the lookup
//     names a known connection.
package ulpforms
