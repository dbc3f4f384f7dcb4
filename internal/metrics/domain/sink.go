package domain

// Sink accepts observations from the render-time recording stage.
// Implementations must be safe for concurrent use.
type Sink interface {
	RecordPageView(v PageView)
	RecordRequest(r Request)
	ObserveDuration(d Duration)
}
