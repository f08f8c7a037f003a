package node

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/interchained/itcpay/constants"
	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, wallet string, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	serverUrl, err := url.Parse(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	client, err := NewClient(ClientOptions{
		Host:   serverUrl.Hostname(),
		Port:   serverUrl.Port(),
		User:   "operator",
		Pass:   "hunter2",
		Wallet: wallet,
	})
	if err != nil {
		t.Fatal(err)
	}
	return client, server
}

func TestCallSendsBasicAuthAndEnvelope(t *testing.T) {
	assert := assert.New(t)

	var captured rpcRequest
	var capturedPath string
	var capturedUser, capturedPass string
	client, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedUser, capturedPass, _ = r.BasicAuth()
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &captured)
		w.Write([]byte(`{"result": {"isvalid": true}, "error": null}`))
	})

	result, err := client.ValidateAddress("itc1qaaa")
	assert.Nil(err)
	assert.True(result.IsValid)

	assert.Equal("/", capturedPath)
	assert.Equal("operator", capturedUser)
	assert.Equal("hunter2", capturedPass)
	assert.Equal("1.0", captured.JsonRpc)
	assert.Equal(constants.CODENAME, captured.Id)
	assert.Equal("validateaddress", captured.Method)
}

func TestCallUsesWalletEndpoint(t *testing.T) {
	assert := assert.New(t)

	var capturedPath string
	client, _ := newTestClient(t, "payouts", func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		w.Write([]byte(`{"result": {"mine": {"trusted": 12.5}}, "error": null}`))
	})

	result, err := client.GetBalances()
	assert.Nil(err)
	assert.Equal("/wallet/payouts", capturedPath)
	assert.Equal("12.5", result.Mine.Trusted.String())
}

func TestCallErrorMember(t *testing.T) {
	assert := assert.New(t)

	client, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"result": null, "error": {"code": -6, "message": "Insufficient funds"}}`))
	})

	_, err := client.GetBalances()
	assert.ErrorIs(err, constants.ErrRpcCallFailed)
	assert.ErrorContains(err, "Insufficient funds")
}

func TestCallHttpErrorStatus(t *testing.T) {
	assert := assert.New(t)

	client, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`not json`))
	})

	_, err := client.GetBalances()
	assert.ErrorIs(err, constants.ErrRpcCallFailed)
	assert.ErrorContains(err, "401")
}

func TestWalletCreateFundedPsbtParams(t *testing.T) {
	assert := assert.New(t)

	var captured rpcRequest
	client, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &captured)
		w.Write([]byte(`{"result": {"psbt": "cHNidP8=", "fee": 0.0001, "changepos": -1}, "error": null}`))
	})

	outputs := map[string]json.Number{"itc1qaaa": json.Number("0.5")}
	result, err := client.WalletCreateFundedPsbt(outputs, map[string]any{"change_type": "bech32"})
	assert.Nil(err)
	assert.Equal("cHNidP8=", result.Psbt)
	assert.Equal(int64(-1), result.ChangePos)

	assert.Equal("walletcreatefundedpsbt", captured.Method)
	// [inputs, outputs, locktime, options, bip32derivs]
	assert.Len(captured.Params, 5)
	assert.Equal(float64(0), captured.Params[2])
	assert.Equal(true, captured.Params[4])
}

func TestWalletProcessPsbtParams(t *testing.T) {
	assert := assert.New(t)

	var captured rpcRequest
	client, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &captured)
		w.Write([]byte(`{"result": {"psbt": "signed", "complete": true}, "error": null}`))
	})

	result, err := client.WalletProcessPsbt("cHNidP8=")
	assert.Nil(err)
	assert.True(result.Complete)
	assert.Equal([]any{"cHNidP8=", true, "ALL", true}, captured.Params)
}

func TestCookieCredentials(t *testing.T) {
	assert := assert.New(t)

	cookieDir := t.TempDir()
	err := os.WriteFile(path.Join(cookieDir, constants.COOKIE_FILE_NAME), []byte("__cookie__:sEcReT\n"), 0600)
	assert.Nil(err)

	user, pass, found := cookieCredentials(cookieDir)
	assert.True(found)
	assert.Equal("__cookie__", user)
	assert.Equal("sEcReT", pass)
}

func TestNewClientWithoutCredentials(t *testing.T) {
	assert := assert.New(t)

	// point every probe location at an empty directory
	t.Setenv("APPDATA", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := NewClient(ClientOptions{Host: "127.0.0.1", Port: "8332"})
	assert.ErrorIs(err, constants.ErrNoCookieCredentials)
}

func TestReadCookieFileRejectsMalformed(t *testing.T) {
	assert := assert.New(t)

	cookiePath := path.Join(t.TempDir(), constants.COOKIE_FILE_NAME)
	assert.Nil(os.WriteFile(cookiePath, []byte("no-separator"), 0600))

	_, _, found := readCookieFile(cookiePath)
	assert.False(found)

	_, _, found = readCookieFile(path.Join(t.TempDir(), "missing"))
	assert.False(found)
}

func TestSendRawTransaction(t *testing.T) {
	assert := assert.New(t)

	client, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.True(strings.Contains(string(body), "sendrawtransaction"))
		w.Write([]byte(`{"result": "deadbeef", "error": null}`))
	})

	txId, err := client.SendRawTransaction("02000000...")
	assert.Nil(err)
	assert.Equal("deadbeef", txId)
}
