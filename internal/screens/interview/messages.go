package interview

import iv "github.com/abhisek/intervu/internal/interview"

// beganMsg carries the freshly started session, greeting and case study
// already appended to its transcript.
type beganMsg struct {
	session *iv.Session
}

// repliedMsg signals that the controller finished processing one
// candidate turn. err is non-nil only for state invariant violations;
// oracle failures are absorbed into fallback replies upstream.
type repliedMsg struct {
	err error
}
