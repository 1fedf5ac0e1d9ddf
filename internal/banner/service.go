package banner

// Service decides whether to show the share banner.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) ShareBanner(userAgent string, width int, pageURL string) ShareBanner {
	if !IsMobile(userAgent, width) {
		return ShareBanner{}
	}
	return ShareBanner{Show: true, URL: pageURL, DelayMs: ShowDelay.Milliseconds()}
}
