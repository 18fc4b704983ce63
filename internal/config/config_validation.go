// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/dragonchain-go/internal/signer"
)

// validate checks that the final merged [StructuredConfig] is usable and
// normalises the algorithm name. An empty algorithm becomes SHA256.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	alg, err := signer.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAlgorithm, err)
	}
	cfg.Algorithm = alg.String()

	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, cfg.RequestTimeout)
	}

	return nil
}
