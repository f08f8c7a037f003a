// Package node implements the JSON-RPC 1.0 client of an Interchained or
// Bitcoin-compatible wallet node. Calls are synchronous with a fixed
// timeout and never retried - a transport failure, an HTTP error status
// or an error member in the reply aborts the whole run.
package node

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/interchained/itcpay/constants"
)

type ClientOptions struct {
	Host   string
	Port   string
	User   string
	Pass   string
	Wallet string
	// explicit directory to probe for a cookie file, in addition to
	// the well known data dirs
	CookieDir string
	Timeout   time.Duration
}

type Client struct {
	url        string
	user       string
	pass       string
	httpClient *http.Client
}

type rpcRequest struct {
	JsonRpc string `json:"jsonrpc"`
	Id      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RpcError       `json:"error"`
}

func readCookieFile(cookiePath string) (string, string, bool) {
	data, err := os.ReadFile(cookiePath)
	if err != nil {
		return "", "", false
	}
	credentials := strings.TrimSpace(string(data))
	user, pass, found := strings.Cut(credentials, ":")
	if !found {
		return "", "", false
	}
	return user, pass, true
}

// cookieCredentials probes the explicit cookie dir first, then the well
// known data dirs of the supported forks, both in the windows appdata
// layout and the unix dotdir layout.
func cookieCredentials(cookieDir string) (string, string, bool) {
	candidates := make([]string, 0, 2*len(constants.COOKIE_SEARCH_DIRECTORIES)+1)
	if cookieDir != "" {
		candidates = append(candidates, path.Join(cookieDir, constants.COOKIE_FILE_NAME))
	}
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		for _, dir := range constants.COOKIE_SEARCH_DIRECTORIES {
			candidates = append(candidates, path.Join(appdata, dir, constants.COOKIE_FILE_NAME))
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		for _, dir := range constants.COOKIE_SEARCH_DIRECTORIES {
			candidates = append(candidates, path.Join(home, "."+strings.ToLower(dir), constants.COOKIE_FILE_NAME))
		}
	}
	for _, candidate := range candidates {
		if user, pass, ok := readCookieFile(candidate); ok {
			slog.Debug("using cookie credentials", "path", candidate)
			return user, pass, true
		}
	}
	return "", "", false
}

func NewClient(options ClientOptions) (*Client, error) {
	user, pass := options.User, options.Pass
	if user == "" || pass == "" {
		cookieUser, cookiePass, found := cookieCredentials(options.CookieDir)
		if !found {
			return nil, constants.ErrNoCookieCredentials
		}
		user, pass = cookieUser, cookiePass
	}

	url := fmt.Sprintf("http://%s:%s/", options.Host, options.Port)
	if options.Wallet != "" {
		url = fmt.Sprintf("http://%s:%s/wallet/%s", options.Host, options.Port, options.Wallet)
	}

	timeout := options.Timeout
	if timeout == 0 {
		timeout = constants.DEFAULT_RPC_TIMEOUT_SECONDS * time.Second
	}

	return &Client{
		url:  url,
		user: user,
		pass: pass,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (client *Client) Call(method string, params []any, result any) error {
	if params == nil {
		params = []any{}
	}
	payload, err := json.Marshal(rpcRequest{
		JsonRpc: "1.0",
		Id:      constants.CODENAME,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return errors.Join(constants.ErrRpcCallFailed, err)
	}

	request, err := http.NewRequest(http.MethodPost, client.url, bytes.NewReader(payload))
	if err != nil {
		return errors.Join(constants.ErrRpcCallFailed, err)
	}
	request.SetBasicAuth(client.user, client.pass)
	request.Header.Set("Content-Type", "application/json")

	slog.Debug("calling node", "method", method)
	response, err := client.httpClient.Do(request)
	if err != nil {
		return errors.Join(constants.ErrRpcCallFailed, fmt.Errorf("transport failure calling %s: %w", method, err))
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.Join(constants.ErrRpcCallFailed, err)
	}

	var reply rpcResponse
	if unmarshalErr := json.Unmarshal(body, &reply); unmarshalErr != nil {
		if response.StatusCode != http.StatusOK {
			return errors.Join(constants.ErrRpcCallFailed, fmt.Errorf("http status %d calling %s: %s", response.StatusCode, method, excerpt(body)))
		}
		return errors.Join(constants.ErrRpcCallFailed, unmarshalErr)
	}
	if reply.Error != nil {
		return errors.Join(constants.ErrRpcCallFailed, fmt.Errorf("%s: %w", method, reply.Error))
	}
	if response.StatusCode != http.StatusOK {
		return errors.Join(constants.ErrRpcCallFailed, fmt.Errorf("http status %d calling %s: %s", response.StatusCode, method, excerpt(body)))
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(reply.Result, result); err != nil {
		return errors.Join(constants.ErrRpcCallFailed, fmt.Errorf("failed to decode %s result: %w", method, err))
	}
	return nil
}

func excerpt(body []byte) string {
	if len(body) > 400 {
		body = body[:400]
	}
	return string(body)
}

func (client *Client) ValidateAddress(address string) (*ValidateAddressResult, error) {
	var result ValidateAddressResult
	err := client.Call("validateaddress", []any{address}, &result)
	return &result, err
}

func (client *Client) GetBalances() (*GetBalancesResult, error) {
	var result GetBalancesResult
	err := client.Call("getbalances", nil, &result)
	return &result, err
}

// WalletCreateFundedPsbt asks the node for a funded, fee-estimated
// unsigned transaction. Inputs are always left to node-side selection
// and locktime is fixed at 0.
func (client *Client) WalletCreateFundedPsbt(outputs map[string]json.Number, options map[string]any) (*WalletCreateFundedPsbtResult, error) {
	result := WalletCreateFundedPsbtResult{ChangePos: -1}
	err := client.Call("walletcreatefundedpsbt", []any{[]any{}, outputs, 0, options, true}, &result)
	return &result, err
}

func (client *Client) WalletProcessPsbt(psbt string) (*WalletProcessPsbtResult, error) {
	var result WalletProcessPsbtResult
	// sign=true, sighash ALL, include bip32 derivations
	err := client.Call("walletprocesspsbt", []any{psbt, true, "ALL", true}, &result)
	return &result, err
}

func (client *Client) FinalizePsbt(psbt string) (*FinalizePsbtResult, error) {
	var result FinalizePsbtResult
	err := client.Call("finalizepsbt", []any{psbt}, &result)
	return &result, err
}

func (client *Client) SendRawTransaction(rawTx string) (string, error) {
	var txId string
	err := client.Call("sendrawtransaction", []any{rawTx}, &txId)
	return txId, err
}

func (client *Client) GetMempoolInfo() (*GetMempoolInfoResult, error) {
	var result GetMempoolInfoResult
	err := client.Call("getmempoolinfo", nil, &result)
	return &result, err
}
