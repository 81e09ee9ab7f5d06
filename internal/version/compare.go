package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-chart/pkg/errors"
)

// CheckConfigCompatibility checks whether a chart configuration written for configVersion
// can be loaded by a binary at binaryVersion.
//
// Compatibility Rules:
//   - An empty config version or a "main" version on either side skips the check
//   - Major versions must match
//   - The binary must be at least as new as the config (^configVersion)
//
// Examples:
//   - Binary 1.2.0, Config 1.2.0 -> OK
//   - Binary 1.5.3, Config 1.2.0 -> OK (newer minor reads older configs)
//   - Binary 1.1.0, Config 1.2.0 -> ERROR (config uses newer features)
//   - Binary 2.0.0, Config 1.2.0 -> ERROR (major differs)
func CheckConfigCompatibility(binaryVersion, configVersion string) error {
	binaryVersion = strings.TrimPrefix(binaryVersion, "v")
	configVersion = strings.TrimPrefix(configVersion, "v")

	if configVersion == "" || binaryVersion == "main" || configVersion == "main" {
		return nil
	}

	binarySemver, err := semver.NewVersion(binaryVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid binary version '%s'", binaryVersion)
	}

	configSemver, err := semver.NewVersion(configVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid config version '%s'", configVersion)
	}

	constraint, err := semver.NewConstraint(fmt.Sprintf("^%s", configSemver.String()))
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid config version '%s'", configVersion)
	}

	if binarySemver.Major() != configSemver.Major() {
		return errors.Newf(errors.ErrCodeInvalidVersion, "major version mismatch: binary is %d.x.x but config requires %d.x.x",
			binarySemver.Major(), configSemver.Major())
	}

	if !constraint.Check(binarySemver) {
		return errors.Newf(errors.ErrCodeInvalidVersion, "config requires version %s or newer, binary is %s",
			configSemver.String(), binarySemver.String())
	}

	return nil
}
