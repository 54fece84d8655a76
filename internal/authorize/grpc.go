package authorize

import (
	"context"

	"github.com/eaterapp/eaterauth/internal/common"
	"github.com/eaterapp/eaterauth/internal/session"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// withAccessToken returns a child context whose outgoing metadata carries the
// access token, replacing any value already present under the same key.
func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// UnaryClientInterceptor injects the current session token into every
// outgoing unary call. When the server answers Unauthenticated, the token is
// force-refreshed and the call retried once; if the refresh itself fails, the
// original RPC error is returned and the session is left as it was.
//
// Calls made with no session present fail locally with
// session.ErrNotAuthenticated and never reach the wire.
func UnaryClientInterceptor(sessions TokenRefresher) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		s, err := sessions.CurrentSession(ctx)
		if err != nil {
			return err
		}
		if s == nil {
			return session.ErrNotAuthenticated
		}

		err = invoker(withAccessToken(ctx, s.Token), method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}

		st, ok := status.FromError(err)
		if !ok || st.Code() != codes.Unauthenticated {
			return err
		}

		refreshed, refreshErr := sessions.RefreshToken(ctx, true)
		if refreshErr != nil {
			// refresh failure never cascades into sign-out; surface the RPC error
			return err
		}

		return invoker(withAccessToken(ctx, refreshed.Token), method, req, reply, cc, opts...)
	}
}
