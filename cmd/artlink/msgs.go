package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Link build artifacts instead of copying them"
	MsgLinkShort       = "Link explicitly requested artifacts"
	MsgLinkDepsShort   = "Link the dependencies of a project"
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice   = "DRY RUN MODE - No changes were made"
	MsgNoArtifacts    = "No resolved artifacts; set project.manifest or --manifest"
	MsgVersionFormat  = "artlink version %s\n  commit: %s\n  built:  %s\n"
	MsgErrorFormat    = "Error: %v"
	MsgErrNoHelpTopic = "help command not found"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagConfig  = "Configuration file (default is ./.artlink.toml)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/link-long.txt
	msgLinkLongRaw string
	MsgLinkLong    = strings.TrimSpace(msgLinkLongRaw)

	//go:embed msgs/link-example.txt
	msgLinkExampleRaw string
	MsgLinkExample    = strings.TrimRight(msgLinkExampleRaw, "\n")

	//go:embed msgs/link-deps-long.txt
	msgLinkDepsLongRaw string
	MsgLinkDepsLong    = strings.TrimSpace(msgLinkDepsLongRaw)

	//go:embed msgs/link-deps-example.txt
	msgLinkDepsExampleRaw string
	MsgLinkDepsExample    = strings.TrimRight(msgLinkDepsExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
