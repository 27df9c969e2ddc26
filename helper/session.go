package helper

import "club_cinema/constants"

// Consent states form a small per-session state machine:
// none → rules → full. Booking is reachable only from full.
const (
	ConsentNone  = "none"
	ConsentRules = "rules"
	ConsentFull  = "full"
)

// Consent steps a visitor can acknowledge, in order.
const (
	StepRules   = "rules"
	StepPrivacy = "privacy"
)

// AdvanceConsent applies one acknowledgement to the current state. Steps
// taken out of order leave the state unchanged and report false.
func AdvanceConsent(current, step string) (string, bool) {
	switch {
	case current == ConsentNone && step == StepRules:
		return ConsentRules, true
	case current == ConsentRules && step == StepPrivacy:
		return ConsentFull, true
	case current == ConsentFull:
		// Re-acknowledging in the same session is a no-op.
		return ConsentFull, true
	}
	if current == "" && step == StepRules {
		return ConsentRules, true
	}
	return current, false
}

// NextConsentStep names the step a visitor still has to acknowledge before
// the booking form opens.
func NextConsentStep(current string) string {
	switch current {
	case ConsentRules:
		return StepPrivacy
	case ConsentFull:
		return ""
	default:
		return StepRules
	}
}

// ThrottleState tracks consecutive failed teacher passcode attempts within
// one session.
type ThrottleState struct {
	Attempts  int
	LockUntil int64
}

// Locked reports whether attempts are refused at the given unix time. A
// locked session refuses even a correct passcode.
func (s ThrottleState) Locked(now int64) bool {
	return s.LockUntil > now
}

// Fail registers one failed attempt; the 5th failure locks the session for
// 300 seconds.
func (s ThrottleState) Fail(now int64) ThrottleState {
	s.Attempts++
	if s.Attempts >= constants.TeacherMaxAttempts {
		s.LockUntil = now + constants.TeacherLockSeconds
	}
	return s
}

// Remaining is the lockout time left in seconds, 0 when unlocked.
func (s ThrottleState) Remaining(now int64) int64 {
	if !s.Locked(now) {
		return 0
	}
	return s.LockUntil - now
}
