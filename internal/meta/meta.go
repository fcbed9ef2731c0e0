// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep project file names and identity strings in one place.
package meta

const (
	// Project Identity
	AppName   = "funcnew"
	EnvPrefix = "FUNCNEW"

	// Directory Layout
	HomeDir = "funcnew"

	// Project Files
	LocalSettingsFile = "local.settings.json"
	HostFile          = "host.json"
	FunctionJSONFile  = "function.json"
	PackageJSONFile   = "package.json"
	TSConfigFile      = "tsconfig.json"
	FSharpProjectExt  = ".fsproj"
	PythonV2File      = "function_app.py"

	// Settings Keys
	WorkerRuntimeSetting = "FUNCTIONS_WORKER_RUNTIME"
	NodeFunctionsPackage = "@azure/functions"

	// Help Shortcut
	HelpKeyword = "help"

	// Documentation Links
	PythonModelDocsURL = "https://aka.ms/pythonprogrammingmodel"
	NodeModelDocsURL   = "https://aka.ms/AzFuncNodeV4"
	ExtensionsDocsURL  = "https://aka.ms/azure-functions/extension-bundles"
)
