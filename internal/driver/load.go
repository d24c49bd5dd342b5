package driver

import (
	"context"
	"encoding/json"
	"fmt"

	"pronouner/internal/assets"
	"pronouner/internal/diag"
	"pronouner/internal/grammar"
	"pronouner/internal/project"
	"pronouner/internal/trace"
)

// PlayerID is the cast id given to the interactive player character.
const PlayerID = "player"

// AssetPaths names the cast and dictionary documents.
type AssetPaths struct {
	Cast       string
	Dictionary string
}

// Assets is a loaded cast and dictionary with the digests of their files.
type Assets struct {
	Cast             *grammar.Cast
	Dictionary       *grammar.Dictionary
	CastDigest       project.Digest
	DictionaryDigest project.Digest
}

// AssetError is a cast or dictionary that failed to load.
type AssetError struct {
	Path string
	Code diag.Code
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("%s: %v", e.Code.ID(), e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }

// LoadAssets loads both documents. The cast comes first; its error wins.
func LoadAssets(ctx context.Context, paths AssetPaths) (*Assets, error) {
	span, ctx := trace.BeginCtx(ctx, trace.ScopePass, "load")
	defer span.End("")

	cast, castDigest, err := assets.LoadCast(paths.Cast)
	if err != nil {
		trace.Error(ctx, trace.ScopePass, "load cast", err)
		return nil, &AssetError{Path: paths.Cast, Code: assets.ErrorCode(err), Err: err}
	}
	dict, dictDigest, err := assets.LoadDictionary(paths.Dictionary)
	if err != nil {
		trace.Error(ctx, trace.ScopePass, "load dictionary", err)
		return nil, &AssetError{Path: paths.Dictionary, Code: assets.ErrorCode(err), Err: err}
	}
	span.WithExtra("characters", fmt.Sprint(cast.Len())).WithExtra("verbs", fmt.Sprint(dict.Len()))
	return &Assets{
		Cast:             cast,
		Dictionary:       dict,
		CastDigest:       project.Digest(castDigest),
		DictionaryDigest: project.Digest(dictDigest),
	}, nil
}

// WithPlayer returns a copy of a whose cast also holds player under PlayerID.
// The cast digest changes with the player so cached output stays correct.
func (a *Assets) WithPlayer(player grammar.Character) *Assets {
	cast := a.Cast.Clone()
	cast.Insert(PlayerID, player)
	out := *a
	out.Cast = cast
	out.CastDigest = project.Combine(a.CastDigest, project.StringDigest(playerKey(player)))
	return &out
}

func playerKey(ch grammar.Character) string {
	data, err := json.Marshal(ch)
	if err != nil {
		return ch.Name
	}
	return string(data)
}
