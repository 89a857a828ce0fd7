package interfaces

import "context"

// ICaptchaVerifier checks a human-verification token issued to the browser.
type ICaptchaVerifier interface {
	Verify(ctx context.Context, token string, remoteIP string) (bool, error)
}
