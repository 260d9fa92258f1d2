package preview

// Package preview implements the 3D preview session lifecycle behind the
// modal dialog: Closed -> Preparing -> (Ready | Error). It fetches the model
// asset, validates it as a scene, and owns the temp-file handle for exactly
// as long as the session lives. A generation counter guards against stale
// fetch results mutating a newer session.
