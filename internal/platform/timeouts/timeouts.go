// Package timeouts defines shared timeout constants used across services.
// Centralizing these values prevents drift between service boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing a gRPC peer.
const GRPCDial = 5 * time.Second

// SpeechRequest caps one synthesis round trip to an external speech API,
// including the download of the returned audio clip.
const SpeechRequest = 30 * time.Second
