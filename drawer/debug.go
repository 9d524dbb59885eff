//go:build debug

package drawer

const debug = true
