package memory

import "github.com/gobeaver/wiseio"

func init() {
	wiseio.RegisterDriver("memory", func(cfg *wiseio.Config) (wiseio.Driver, error) {
		return New(), nil
	})
}
