package models

type BuildInformation struct {
	Version string
	Commit  string
	Date    string
}

func (b BuildInformation) VersionString() string {
	return "duckup " + b.Version + " (commit " + b.Commit + " built on " + b.Date + ")"
}
