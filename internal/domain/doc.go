// Package domain contains the core business entities of SkillPilot: the
// registered Account and the errors raised while validating it. It is
// independent of any storage engine or delivery mechanism.
package domain
