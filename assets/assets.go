// Package assets embeds the default game data.
package assets

import "embed"

// Data holds the bundled world definition under data/.
//
//go:embed data/*.yaml
var Data embed.FS

// WorldFile is the path of the default world inside Data.
const WorldFile = "data/world.yaml"
