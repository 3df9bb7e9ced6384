package constants

// ReviewThreshold is the confidence below which a human reviewer must
// confirm an extraction before the surrounding workflow trusts it.
// Exposed as a constant so the review workflow can be tuned in one place.
const ReviewThreshold = 0.7
