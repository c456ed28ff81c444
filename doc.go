// Package ghrest provides a typed client for the GitHub REST API.
//
// Each Client method maps to one REST endpoint: the arguments become a
// request and the JSON answer becomes one of the package's data types. On top
// of those bindings the package offers a recursive repository walk that
// fetches every file on a branch with its decoded content.
//
// # Architecture
//
//  1. Transport abstraction: every request goes through the Transport
//     interface, which performs a single round-trip
//  2. Three transports: go-github over HTTP (transport/rest), the gh CLI
//     (transport/cli), and a Prometheus decorator (transport/metrics)
//  3. Client methods for repositories, branches, commits, collaborators,
//     users, pull requests and file contents
//  4. A Repository handle binding owner and name
//  5. Errors from the workspace errors library, classified by HTTP status
//
// # Walking a repository
//
// ListAllFiles lists directories breadth-first, starting at the root, and
// fetches every regular file it finds. A repository with D directories and F
// files costs exactly D+F requests, issued one at a time. WalkFiles streams
// the same walk to a callback instead of collecting it.
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/jmgilman/go/ghrest"
//	    "github.com/jmgilman/go/ghrest/transport/rest"
//	)
//
//	func main() {
//	    transport, err := rest.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    client, err := ghrest.NewClient(transport, "octocat", "ghp_xxxxxxxxxxxx")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    files, err := client.ListAllFiles(context.Background(), "octocat", "hello-world", "main")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, f := range files {
//	        fmt.Println(f.Path, len(f.Text))
//	    }
//	}
//
// # Credentials
//
// Requests authenticate with HTTP Basic Authentication using the client's
// username and token. SetUser and SetToken swap the credential pair
// atomically, so requests already in flight keep the pair they started with.
//
// # Error Handling
//
// All errors are PlatformErrors from github.com/jmgilman/go/errors. Remote
// rejections are classified by status (404 is NOT_FOUND, 409 CONFLICT, 5xx
// NETWORK_ERROR and so on) and keep the *RequestError in their chain:
//
//	_, err := client.GetFile(ctx, "octocat", "hello-world", "missing.txt", "")
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // no such file
//	}
//	status := ghrest.StatusCode(err) // 404
//
// Responses that cannot be decoded are INVALID_INPUT. Nothing is retried.
//
// The collaborator check is the one place where a 404 is an answer rather
// than a failure; CheckCollaborator reports it as CollaboratorNo.
package ghrest
