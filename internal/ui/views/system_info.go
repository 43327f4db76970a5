package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath   string
	Driver       string
	DBPath       string
	DBExists     bool // true = Found, false = Not Found
	StoreTimeout string
	LogLevel     string
	CardCount    int
	AppDataDir   string
}

func systemInfoTableData(data SystemInfoItem) pterm.TableData {
	dbPath := data.DBPath
	dbStatus := pterm.Green("Found")
	switch {
	case data.Driver == "memory":
		dbPath = "(in memory)"
		dbStatus = pterm.Yellow("Not persisted")
	case !data.DBExists:
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	return pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Driver", data.Driver},
		{"Database Path", dbPath},
		{"Database Status", dbStatus},
		{"Store Timeout", data.StoreTimeout},
		{"Log Level", data.LogLevel},
		{"Cards", pterm.Sprint(data.CardCount)},
		{"AppData Directory", data.AppDataDir},
	}
}

func RenderSystemInfo(data SystemInfoItem) error {
	return pterm.DefaultTable.WithData(systemInfoTableData(data)).Render()
}
