//go:build !debug

package drawer

const debug = false
