// Package orgapi is the HTTP client for the backend's organization endpoints.
//
// The client never surfaces a bare Go error from CreateOrganization. Every
// response is classified into a Result:
//   - ResultCreated: status 200 with {"data": <organization>}
//   - ResultApplicationFailure: any other 2xx status
//   - ResultTransportFailure: network errors, undecodable bodies and non-2xx
//     statuses, categorized by the payload's "message" field
//
// Example usage:
//
//	client := orgapi.NewClient("https://example.com/api")
//	res := client.CreateOrganization(ctx, domain.FormValues{Name: "Acme"})
//	switch res.Kind {
//	case orgapi.ResultCreated:
//	    // res.Organization.Slug
//	case orgapi.ResultTransportFailure:
//	    // res.Failure
//	}
package orgapi
