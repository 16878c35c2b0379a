package groups

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-tax-ledger-go/api/errors"
	"github.com/multiversx/mx-chain-tax-ledger-go/api/shared"
	"github.com/multiversx/mx-chain-tax-ledger-go/data/api"
)

const (
	getVotesPath           = "/:address"
	getPastVotesPath       = "/:address/past/:timestamp"
	getCheckpointsPath     = "/:address/checkpoints"
	getPastTotalSupplyPath = "/supply/past/:timestamp"
)

// votesFacadeHandler defines the methods to be implemented by a facade for handling votes requests
type votesFacadeHandler interface {
	GetVotes(address string) (string, error)
	GetPastVotes(address string, timestamp uint64) (string, error)
	GetPastTotalSupply(timestamp uint64) (string, error)
	GetCheckpoints(address string) ([]*api.Checkpoint, error)
	IsInterfaceNil() bool
}

type votesGroup struct {
	*baseGroup
	facade votesFacadeHandler
}

// NewVotesGroup returns a new instance of votesGroup
func NewVotesGroup(facade votesFacadeHandler) (*votesGroup, error) {
	if check.IfNil(facade) {
		return nil, fmt.Errorf("%w for votes group", errors.ErrNilFacadeHandler)
	}

	vg := &votesGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	endpoints := []*shared.EndpointHandlerData{
		{
			Path:    getVotesPath,
			Method:  http.MethodGet,
			Handler: vg.getVotes,
		},
		{
			Path:    getPastVotesPath,
			Method:  http.MethodGet,
			Handler: vg.getPastVotes,
		},
		{
			Path:    getCheckpointsPath,
			Method:  http.MethodGet,
			Handler: vg.getCheckpoints,
		},
		{
			Path:    getPastTotalSupplyPath,
			Method:  http.MethodGet,
			Handler: vg.getPastTotalSupply,
		},
	}
	vg.endpoints = endpoints

	return vg, nil
}

// getVotes returns the current votes of an address
func (vg *votesGroup) getVotes(c *gin.Context) {
	votes, err := vg.facade.GetVotes(c.Param("address"))
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrGetVotes, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"votes": votes})
}

// getPastVotes returns the votes an address had at a past timestamp
func (vg *votesGroup) getPastVotes(c *gin.Context) {
	timestamp, err := parseUint64Param(c, "timestamp")
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrBadUrlParams, err)
		return
	}

	votes, err := vg.facade.GetPastVotes(c.Param("address"), timestamp)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrGetPastVotes, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"votes": votes, "timestamp": timestamp})
}

func (vg *votesGroup) getCheckpoints(c *gin.Context) {
	list, err := vg.facade.GetCheckpoints(c.Param("address"))
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrGetCheckpoints, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"checkpoints": list})
}

// getPastTotalSupply returns the total supply at a past timestamp
func (vg *votesGroup) getPastTotalSupply(c *gin.Context) {
	timestamp, err := parseUint64Param(c, "timestamp")
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrBadUrlParams, err)
		return
	}

	supply, err := vg.facade.GetPastTotalSupply(timestamp)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrGetPastVotes, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"totalSupply": supply, "timestamp": timestamp})
}

// IsInterfaceNil returns true if there is no value under the interface
func (vg *votesGroup) IsInterfaceNil() bool {
	return vg == nil
}
