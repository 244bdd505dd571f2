package urls

// Repository is the project home page
const Repository = "https://github.com/muurk/troubleshooter"

// Support is where users report a problem the summary did not cover
const Support = Repository + "/issues"

// CatalogReference lists every device, operating system, and problem code
// accepted by the resolve command.
const CatalogReference = Repository + "#catalog"
