package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// versionInfo holds version information
type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// versionsYAML represents the versions.yaml file structure
type versionsYAML struct {
	Project struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"project"`
	Git struct {
		Commit string `yaml:"commit"`
		Branch string `yaml:"branch"`
	} `yaml:"git"`
	Build struct {
		Time      string `yaml:"time"`
		GoVersion string `yaml:"go_version"`
	} `yaml:"build"`
}

// versionSearchPaths are tried in order; the first readable file wins
var versionSearchPaths = []string{"versions.yaml", "../versions.yaml", "../../versions.yaml"}

func runVersion(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(CmdNameVersion, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	var format string
	fs.StringVar(&format, FlagOutputFormat, FlagDefaultOutputFormat, "")
	fs.StringVar(&format, FlagOutputFormatShort, FlagDefaultOutputFormat, "")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}
	if format != OutputFormatText && format != OutputFormatJSON {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, errors.New(format))
		return ExitCodeUsageError
	}

	v := getVersionInfo(versionSearchPaths)
	if format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(v, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline,
		v.Version, v.Commit, v.Branch, v.BuildTime, v.GoVersion)
	return ExitCodeSuccess
}

func getVersionInfo(paths []string) *versionInfo {
	v := &versionInfo{
		Version:   VersionUnknown,
		Commit:    VersionUnknown,
		Branch:    VersionUnknown,
		BuildTime: VersionUnknown,
		GoVersion: runtime.Version(),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var vy versionsYAML
		if err := yaml.Unmarshal(data, &vy); err != nil {
			continue
		}

		if vy.Project.Version != "" {
			v.Version = vy.Project.Version
		}
		if vy.Git.Commit != "" {
			v.Commit = vy.Git.Commit
		}
		if vy.Git.Branch != "" {
			v.Branch = vy.Git.Branch
		}
		if vy.Build.Time != "" {
			v.BuildTime = vy.Build.Time
		}
		if vy.Build.GoVersion != "" {
			v.GoVersion = vy.Build.GoVersion
		}
		break
	}

	return v
}
