/*
Package disclosuresdk is a client for the disclosure service HTTP API.

# SDKClient vs Session

SDKClient covers the public endpoints: health probes and invite
inspection. A Session wraps an identity token minted by the identity
provider and covers everything else.

	client := disclosuresdk.NewSDKClient("https://disclosure.example.com")
	info, err := client.InspectInvite(ctx, token)

	agent := client.NewSession(agentToken)
	p, err := agent.CreateProperty(ctx, disclosuresdk.CreatePropertyRequest{
		Title:   "12 Wattle St",
		Address: "12 Wattle St, Brisbane QLD",
	})

# Errors

Failed requests return *APIError carrying the service's error kind:

	_, err := agent.GenerateServePack(ctx, p.ID)
	if disclosuresdk.IsCode(err, disclosuresdk.ErrorCodePreconditionFailed) {
		// generate a Form 2 first
	}

Some successful responses carry Warnings for best-effort steps that failed,
such as an invite email that could not be delivered.
*/
package disclosuresdk
