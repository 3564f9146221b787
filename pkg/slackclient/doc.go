// Package slackclient constructs concrete slack.Client values.
//
// Use New with an explicit token, or NewFromEnv to read the token from an
// environment variable (SLACK_API_TOKEN by default). There is no ambient
// default client; configuration is always passed explicitly.
//
//	cli, err := slackclient.NewFromEnv("", nil)
//	if err != nil {
//	  // token missing: *slack.ConfigurationError
//	}
package slackclient
