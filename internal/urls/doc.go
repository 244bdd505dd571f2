// Package urls provides the links shown to users who need more help than
// the wizard can give.
//
// Usage:
//
//	import "github.com/muurk/troubleshooter/internal/urls"
//
//	fmt.Printf("Still stuck? Open an issue: %s\n", urls.Support)
package urls
