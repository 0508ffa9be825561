// Package all wires the built-in source adapters into the source factory.
//
// It exists purely for side effects: importing it (even as a blank import)
// runs the init functions of each concrete adapter, which register their
// factories with the source package. Binaries that only need one backend can
// blank-import that backend directly instead.
package all

import (
	_ "shopetl/internal/source/mysql"
	_ "shopetl/internal/source/postgres"
)
