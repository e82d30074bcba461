package schemas

import "embed"

//go:embed stored-listing/*.json cache-invalidation-command/*.json
var SchemasFS embed.FS
