package metrics

// NopCollector ignores every event.
type NopCollector struct{}

func NewNopCollector() *NopCollector {
	return &NopCollector{}
}

func (c *NopCollector) RecordRead(string, int) {}

func (c *NopCollector) RecordWrite(string, int) {}

func (c *NopCollector) RecordRetry(string) {}

func (c *NopCollector) RecordError(string) {}
