package constants

// AppName is used for the window title and the config directory.
const AppName = "folio"

// ManifestName is the optional per-gallery description file.
const ManifestName = "gallery.toml"

// TicksPerSecond matches ebiten's default update rate; one tick is one
// animation frame for the scrollers.
const TicksPerSecond = 60
