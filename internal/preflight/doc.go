// Package preflight provides readiness checks for the filesystem paths and
// listen address logpage depends on.
//
// These checks run in two contexts:
//   - "logpage serve" calls RunPaths before taking its lock and opening the
//     listener, and refuses to start when a check fails.
//   - "logpage config validate" prints every result so operators can fix the
//     environment before deploying.
package preflight
