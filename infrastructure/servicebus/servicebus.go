package servicebus

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
)

// NewServiceBus authenticates with the default Azure credential chain and
// returns a client for the fully qualified namespace.
func NewServiceBus(_ context.Context, namespace string) (*azservicebus.Client, error) {
	if namespace == "" {
		return nil, errors.New("service bus namespace not configured")
	}
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("azure credential: %w", err)
	}
	return azservicebus.NewClient(namespace, credential, nil)
}
